package words

// Two-letter sequences a submitted word must contain. One is drawn at
// random for every turn.
var Combinations = []string{
	"بر", "تر", "در", "كر", "مر", "نر", "هر", "ير", "لر", "سر",
	"بل", "تل", "دل", "كل", "مل", "نل", "هل", "يل", "لل", "سل",
	"بت", "تت", "دت", "كت", "مت", "نت", "هت", "يت", "لت", "ست",
	"بن", "تن", "دن", "كن", "من", "نن", "هن", "ين", "لن", "سن",
	"بم", "تم", "دم", "كم", "مم", "نم", "هم", "يم", "لم", "سم",
}

// arabicWords is the bundled lexicon. Duplicates collapse when the set is
// built.
var arabicWords = []string{
	// Basic nouns - الأسماء الأساسية
	"كتاب", "بيت", "مدرسة", "طعام", "ماء", "شمس", "قمر", "نجم",
	"أرض", "سماء",
	"بحر", "جبل", "شجرة", "وردة", "طفل", "أم", "أب", "أخ",
	"أخت", "جد",
	"جدة", "عم", "عمة", "خال", "خالة", "صديق", "مدرس", "طبيب",
	"مهندس", "فنان",
	"كاتب", "طالب", "عامل", "تاجر", "سائق", "طباخ", "خباز", "بائع",
	"موظف", "رجل",
	"امرأة", "ولد", "بنت", "حديقة", "مكتبة", "مستشفى", "دكان", "سوق",
	"شارع", "طريق",

	// Transportation - وسائل النقل
	"سيارة", "باص", "قطار", "طائرة", "سفينة", "دراجة", "حافلة", "مترو",
	"تاكسي", "شاحنة",
	"مركبة", "عربة", "قارب", "يخت", "صاروخ", "بالون", "جسر", "محطة",
	"مطار", "ميناء",

	// Animals - الحيوانات
	"حصان", "كلب", "قطة", "أسد", "فيل", "زرافة", "طائر", "سمك",
	"فراشة", "نحلة",
	"عنكبوت", "ثعبان", "ضفدع", "أرنب", "خروف", "بقرة", "جمل", "حمار",
	"ديك", "دجاجة",
	"بطة", "إوزة", "نسر", "صقر", "حمامة", "عصفور", "غراب", "ببغاء",
	"تمساح", "سلحفاة",
	"فأر", "قرد", "دب", "ذئب", "ثعلب", "غزال", "نمر", "فهد",
	"وحيد", "قرش",

	// Fruits - الفواكه
	"تفاح", "موز", "برتقال", "عنب", "فراولة", "أناناس", "مانجو", "خوخ",
	"كمثرى", "بطيخ",
	"شمام", "رمان", "تين", "مشمش", "كرز", "توت", "جوز", "لوز",
	"بندق", "تمر",
	"جوافة", "كيوي", "ليمون", "برقوق", "عنبر", "يقطين", "قرع", "خيار",
	"جزر", "بصل",

	// Vegetables - الخضروات
	"طماطم", "بطاطس", "جزر", "بصل", "ثوم", "خيار", "خس", "ملفوف",
	"فلفل", "باذنجان",
	"كوسا", "فجل", "سبانخ", "بقدونس", "كزبرة", "نعناع", "ريحان", "زعتر",
	"قرنبيط", "بروكلي",
	"لفت", "شمندر", "فاصولياء", "بازلاء", "ذرة", "فول", "عدس", "حمص",
	"لوبيا", "برغل",

	// Colors - الألوان
	"أحمر", "أخضر", "أزرق", "أصفر", "أبيض", "أسود", "بني", "برتقالي",
	"وردي", "بنفسجي",
	"رمادي", "ذهبي", "فضي", "زيتوني", "تركوازي", "بيج", "كريمي", "كستنائي",
	"عاجي", "قرمزي",

	// Common verbs - الأفعال الشائعة
	"كتب", "قرأ", "أكل", "شرب", "نام", "استيقظ", "مشى", "جرى",
	"قفز", "طار",
	"سبح", "غنى", "رقص", "لعب", "عمل", "درس", "علم", "تعلم",
	"فهم", "عرف",
	"رأى", "سمع", "لمس", "شم", "تذوق", "تكلم", "قال", "سأل",
	"أجاب", "ضحك",
	"بكى", "فرح", "حزن", "خاف", "أحب", "كره", "أراد", "احتاج",
	"ساعد", "شكر",

	// Common adjectives - الصفات الشائعة
	"كبير", "صغير", "طويل", "قصير", "واسع", "ضيق", "سميك", "رقيق",
	"ثقيل", "خفيف",
	"قوي", "ضعيف", "سريع", "بطيء", "حار", "بارد", "جميل", "قبيح",
	"نظيف", "قذر",
	"جديد", "قديم", "صحيح", "خاطئ", "سهل", "صعب", "مفيد", "ضار",
	"مفتوح", "مغلق",
	"ممتلئ", "فارغ", "غني", "فقير", "سعيد", "حزين", "مريض", "صحي",
	"متزوج", "أعزب",

	// Common words with letter combinations for the game
	"برج", "برد", "برك", "برق", "بري", "بركة", "برية", "برتقال",
	"برمجة", "برنامج",
	"تراب", "ترك", "ترتيب", "ترجمة", "تركيب", "تربية", "تراث", "تريح",
	"تركي", "تريد",
	"درب", "درج", "درس", "درة", "دراسة", "دراما", "درامي", "دربك",
	"درهم", "درية",
	"كرة", "كرم", "كريم", "كركم", "كرش", "كرسي", "كراسة", "كرامة",
	"كريمة", "كريه",
	"مرة", "مرح", "مرض", "مرآة", "مرحلة", "مرسوم", "مرتب", "مرشد",
	"مرغوب", "مريض",
	"هرب", "هرم", "هرمون", "هرمي", "هرة", "هرج", "هرمز", "هرتز",
	"هرطقة", "هرولة",
	"سرير", "سرعة", "سريع", "سرور", "سرد", "سرداب", "سرطان", "سرحان",
	"سرقة", "سرية",

	// Words with بل combination
	"بلد", "بلح", "بلل", "بلوز", "بلور", "بلاط", "بلاغة", "بلدية",
	"بلدي", "بلاد",
	"تلفزيون", "تلفون", "تلاميذ", "تلة", "تلك", "تلوين", "تلقي", "تلقائي",
	"تلعب", "تلبس",
	"دلو", "دليل", "دلال", "دلتا", "دلع", "دلالة", "دلائل", "دلف",
	"دلق", "دلك",
	"كلب", "كلام", "كلمة", "كلية", "كلاسيكي", "كلف", "كلس", "كلم",
	"كلور", "كلى",
	"ملك", "ملح", "ملف", "ملعب", "ملابس", "ملاك", "ملاحظة", "ملعقة",
	"ملكة", "ملاءمة",
	"هلال", "هلام", "هلع", "هلوسة", "هلاك", "هلاوس", "هلل", "هلق",
	"هلك",
	"لعبة", "لعب", "لعنة", "لعق", "لعاب", "لعبر", "لعدم", "لعرض",
	"لعمل", "لعيش",
	"سلطة", "سلم", "سلام", "سلسلة", "سلك", "سلطان", "سلوك", "سلامة",
	"سلالة", "سلعة",

	// Words with بت combination
	"بتر", "بتول", "بتة", "بتال", "بتلة", "بتك", "بتات", "بتع",
	"بتي",
	"كتب", "كتاب", "كتابة", "كتيب", "كتلة", "كتان", "كتم", "كتف",
	"كتاكيت", "كتائب",
	"متر", "مترو", "متاع", "متأخر", "متقدم", "متوسط", "متين", "متحف",
	"متجر", "متعة",
	"نتائج", "نتيجة", "نتاج", "نتف", "نتن", "نتوء", "نتر", "نتع",
	"نتق", "نتك",
	"ستائر", "ستار", "ستة", "ستين", "ستيريو", "ستوديو", "ستراتيجية", "ستاتيكي",

	// Words with بن combination
	"بنت", "بني", "بناء", "بنان", "بنك", "بنود", "بنية", "بنفسج",
	"بنطال", "بنزين",
	"تنور", "تنين", "تنس", "تنمية", "تنظيم", "تنفس", "تنظيف", "تنوع",
	"تنشيط", "تنزيل",
	"دنيا", "دنو", "دنيء", "دنس", "دنق", "دنكم", "دنان", "دنيل",
	"دنير", "دنوب",
	"كنز", "كنيسة", "كنب", "كنتور", "كنار", "كنعان", "كنف", "كنه",
	"كنود", "كنغر",
	"منزل", "منطقة", "منتج", "منحة", "منذر", "منع", "منطق", "منجم",
	"منشور", "منقذ",
	"هناك", "هنا", "هند", "هنادي", "هناء", "هنري", "هنغاري", "هنيئا",
	"هنية", "هنيدة",
	"سنة", "سنام", "سناء", "سنتيمتر", "سنجاب", "سنار", "سنابل", "سنوات",
	"سنور", "سنادن",

	// Words with بم combination
	"تمر", "تمثال", "تمثيل", "تمرين", "تمام", "تمديد", "تمويل", "تمهيد",
	"تمكين", "تمنية",
	"دمية", "دمج", "دمعة", "دماغ", "دمار", "دمشق", "دمث", "دمق",
	"دمك", "دمل",
	"كمان", "كمية", "كمبيوتر", "كمثرى", "كمادة", "كمامة", "كمال", "كمين",
	"كمأة", "كمح",
	"مما", "ممتاز", "ممر", "ممثل", "ممارسة", "ممكن", "ممتع", "ممنوع",
	"ممطر", "ممسحة",
	"نمر", "نمل", "نمو", "نموذج", "نمط", "نمارق", "نمش", "نمير",
	"نمق", "نمص",
	"همس", "همة", "همجي", "همز", "همباته", "همسة", "هموم", "همجية",
	"همزة", "همسات",
	"سمك", "سماء", "سمع", "سمسم", "سمير", "سمراء", "سمعة", "سمات",
	"سمج", "سمل",

	// Additional common words
	"عائلة", "أسرة", "أهل", "والد", "والدة", "ابن", "ابنة", "حفيد",
	"حفيدة",
	"زوج", "زوجة", "خطيب", "خطيبة", "عريس", "عروس", "قريب", "بعيد",
	"غريب",
	"واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية",
	"تسعة", "عشرة",
	"عشرون", "ثلاثون", "أربعون", "خمسون", "مائة", "ألف", "مليون", "مليار",
	"سبت", "أحد", "اثنين", "ثلاثاء", "أربعاء", "خميس", "جمعة", "أسبوع",
	"شهر",
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس",
	"سبتمبر",
	"أكتوبر", "نوفمبر", "ديسمبر", "ربيع", "صيف", "خريف", "شتاء", "موسم",
	"فصل",
	"حب", "كره", "فرح", "حزن", "خوف", "شجاعة", "أمل", "يأس",
	"غضب", "هدوء",
	"قلق", "اطمئنان", "حماس", "ملل", "دهشة", "إعجاب", "إحباط", "تفاؤل",
	"تشاؤم",
	"ذهب", "جاء", "رجع", "عاد", "وصل", "غادر", "خرج", "دخل",
	"صعد", "نزل",
	"وقف", "جلس", "استلقى", "انحنى", "اقترب", "ابتعد", "توقف", "استمر",
	"بدأ", "انتهى",
	"فتح", "أغلق", "أشعل", "أطفأ", "رفع", "خفض", "دفع", "سحب",
	"حمل", "وضع",
	"أخذ", "أعطى", "أخفى", "أظهر", "باع", "اشترى", "دفع", "استلم",
	"أرسل", "استقبل",
	"مدينة", "قرية", "بلد", "دولة", "قارة", "عالم", "مكان", "موقع",
	"منطقة",
	"منزل", "غرفة", "مطبخ", "حمام", "صالة", "مكتب", "محل", "مول",
	"جامعة", "كلية", "روضة", "متحف", "مسرح", "سينما", "مقهى", "مطعم",
	"فندق", "صيدلية", "بنك", "مصرف", "بريد", "شرطة", "مطافئ", "مسجد",
	"كنيسة",
	"حاسوب", "كمبيوتر", "هاتف", "تلفون", "جوال", "محمول", "راديو", "إنترنت",
	"موقع",
	"برنامج", "تطبيق", "شاشة", "لوحة", "فأرة", "كاميرا", "تسجيل", "صوت",
	"صورة", "فيديو",
	"ملف", "مجلد", "رسالة", "بريد", "إيميل", "شبكة", "اتصال", "خدمة",
	"نظام",
	"علم", "تعلم", "تعليم", "صف", "فصل", "أستاذ", "معلم", "دكتور",
	"امتحان", "اختبار",
	"واجب", "مشروع", "بحث", "دراسة", "تجربة", "دفتر", "قلم", "ممحاة",
	"مسطرة", "حقيبة",
	"لوح", "سبورة", "طاولة", "كرسي", "رقم", "حرف", "جملة", "فقرة",
	"صفحة", "موضوع",
	"درس", "وحدة", "باب", "قدم", "سلة", "طائرة", "تنس", "سباحة",
	"جري", "قفز",
	"رماية", "ملاكمة", "مصارعة", "جودو", "كراتيه", "تايكوندو", "جمباز", "رقص",
	"يوغا",
	"تمرين", "لياقة", "صحة", "ملعب", "مضرب", "شبكة", "هدف", "نقطة",
	"فوز", "خسارة",
	"تعادل", "بطولة", "كأس", "أكل", "شراب", "عصير", "حليب", "شاي",
	"قهوة", "سكر",
	"ملح", "خبز", "أرز", "لحم", "دجاج", "بيض", "جبن", "زبدة",
	"زيت", "خل",
	"عسل", "مربى", "حلوى", "كعك", "بسكوت", "شوكولاتة", "آيس", "كريم",
	"طبق", "كأس",
	"ملعقة", "شوكة", "سكين", "طبخ", "قلي", "شوي", "سلق", "خبز",
	"تحضير", "وجبة",

}
