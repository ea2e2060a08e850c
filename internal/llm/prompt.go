package llm

import "fmt"

// BuildExtractionPrompt returns the fixed Arabic instruction sent with every
// request. It names the six target fields and shows the exact JSON shape the
// model must return; the response MIME hint does the rest.
func BuildExtractionPrompt(number int) string {
	return fmt.Sprintf(`أنت خبير في استخراج وتحليل النصوص من مستندات PDF باللغة العربية.

المهمة: استخرج محتوى هذا المعيار الشرعي (معيار رقم %d) من AAOIFI بدقة كاملة 100%%.

يجب أن تستخرج:

1. **title**: عنوان المعيار الكامل بالعربية
2. **text**: النص الكامل للمعيار مع الحفاظ على التنسيق الأصلي
3. **sections**: قائمة بجميع الأقسام والعناوين الفرعية، كل قسم يحتوي على:
   - sec_id: رقم القسم (مثل 1، 1.1، 2، 2.1، إلخ)
   - heading: عنوان القسم
   - text: نص القسم كاملاً
4. **keywords**: قائمة بالكلمات المفتاحية الرئيسية المتعلقة بالمعيار (10-20 كلمة)
5. **aliases**: الأسماء البديلة للمعيار بالعربية والإنجليزية
6. **pages**: قائمة بأرقام الصفحات الموجودة في المستند

أرجع النتيجة بصيغة JSON صالحة فقط، بدون أي نص إضافي.

مثال على الصيغة المطلوبة:
{
  "title": "عنوان المعيار",
  "text": "النص الكامل...",
  "sections": [
    {"sec_id": "1", "heading": "المقدمة", "text": "نص المقدمة..."},
    {"sec_id": "1.1", "heading": "التعريفات", "text": "نص التعريفات..."}
  ],
  "keywords": ["كلمة1", "كلمة2"],
  "aliases": ["الاسم البديل بالعربية", "English Alias"],
  "pages": ["1", "2", "3"]
}

استخرج المحتوى بدقة مع الحفاظ على جميع الجداول والتنسيقات.`, number)
}
